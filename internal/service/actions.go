package service

// ActionKind identifies a user action on a page.
type ActionKind int

const (
	ActionShow ActionKind = iota
	ActionEnterName
	ActionStartHome
	ActionSelectCategory
	ActionStartQuiz
	ActionChooseOption
	ActionSubmit
	ActionNext
	ActionViewScore
	ActionRestart
)

func (k ActionKind) String() string {
	switch k {
	case ActionShow:
		return "show"
	case ActionEnterName:
		return "enter_name"
	case ActionStartHome:
		return "start_home"
	case ActionSelectCategory:
		return "select_category"
	case ActionStartQuiz:
		return "start_quiz"
	case ActionChooseOption:
		return "choose_option"
	case ActionSubmit:
		return "submit"
	case ActionNext:
		return "next"
	case ActionViewScore:
		return "view_score"
	case ActionRestart:
		return "restart"
	}
	return "unknown"
}

// Action is one user input. Quiz actions carry the run and question index
// they were rendered for, so presses on an outdated message can be told apart.
type Action struct {
	Kind     ActionKind
	Text     string // player name or category name
	Run      int
	Question int
	Option   int
}

func Show() Action                      { return Action{Kind: ActionShow} }
func EnterName(name string) Action      { return Action{Kind: ActionEnterName, Text: name} }
func StartHome() Action                 { return Action{Kind: ActionStartHome} }
func SelectCategory(name string) Action { return Action{Kind: ActionSelectCategory, Text: name} }
func StartQuiz() Action                 { return Action{Kind: ActionStartQuiz} }
func Restart() Action                   { return Action{Kind: ActionRestart} }

func ChooseOption(run, question, option int) Action {
	return Action{Kind: ActionChooseOption, Run: run, Question: question, Option: option}
}

func Submit(run, question int) Action {
	return Action{Kind: ActionSubmit, Run: run, Question: question}
}

func Next(run, question int) Action {
	return Action{Kind: ActionNext, Run: run, Question: question}
}

func ViewScore(run, question int) Action {
	return Action{Kind: ActionViewScore, Run: run, Question: question}
}
