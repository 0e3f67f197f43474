package entities

// QuestionBank is the load-once set of categories. Category order follows the
// source, lookups go through the name index.
type QuestionBank struct {
	categories []Category
	index      map[string]int
}

// NewQuestionBank builds a bank from categories in the given order.
// A repeated name replaces the earlier category's questions but keeps its position.
func NewQuestionBank(categories []Category) *QuestionBank {
	b := &QuestionBank{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, c := range categories {
		if i, ok := b.index[c.Name]; ok {
			b.categories[i] = c
			continue
		}
		b.index[c.Name] = len(b.categories)
		b.categories = append(b.categories, c)
	}

	return b
}

// EmptyQuestionBank is what the app falls back to when the source is unusable.
func EmptyQuestionBank() *QuestionBank {
	return NewQuestionBank(nil)
}

// Names returns category names in source order.
func (b *QuestionBank) Names() []string {
	names := make([]string, 0, len(b.categories))
	for _, c := range b.categories {
		names = append(names, c.Name)
	}
	return names
}

// Category looks up a category by name.
func (b *QuestionBank) Category(name string) (Category, bool) {
	i, ok := b.index[name]
	if !ok {
		return Category{}, false
	}
	return b.categories[i], true
}

// Len returns the number of categories.
func (b *QuestionBank) Len() int {
	return len(b.categories)
}
