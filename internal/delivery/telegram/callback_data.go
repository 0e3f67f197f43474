package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/quiz-bot/internal/service"
)

var ErrInvalidCallback = errors.New("invalid callback data")

// Callback action constants.
const (
	actionHome     = "home"
	actionCategory = "cat"
	actionQuiz     = "quiz"
	actionScore    = "score"
)

// Home sub-actions.
const (
	homeStart = "start"
)

// Category sub-actions.
const (
	categoryPick  = "pick"
	categoryStart = "start"
)

// Quiz sub-actions.
const (
	quizOption = "opt"
	quizSubmit = "submit"
	quizNext   = "next"
	quizScore  = "score"
)

// Score sub-actions.
const (
	scoreRestart = "restart"
)

// placeholderIndex selects the "Select" entry on the category page.
const placeholderIndex = -1

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildHomeStartCallback() string {
	return callbackData{Action: actionHome, Params: []string{homeStart}}.encode()
}

// buildCategoryPickCallback refers to a category by its position in the
// category list; names can be longer than the 64 bytes Telegram allows.
func buildCategoryPickCallback(index int) string {
	return callbackData{
		Action: actionCategory,
		Params: []string{categoryPick, strconv.Itoa(index)},
	}.encode()
}

func buildCategoryStartCallback() string {
	return callbackData{Action: actionCategory, Params: []string{categoryStart}}.encode()
}

func buildQuizOptionCallback(run, question, option int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizOption, strconv.Itoa(run), strconv.Itoa(question), strconv.Itoa(option)},
	}.encode()
}

func buildQuizSubmitCallback(run, question int) string {
	return buildQuizStepCallback(quizSubmit, run, question)
}

func buildQuizNextCallback(run, question int) string {
	return buildQuizStepCallback(quizNext, run, question)
}

func buildQuizScoreCallback(run, question int) string {
	return buildQuizStepCallback(quizScore, run, question)
}

func buildQuizStepCallback(step string, run, question int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{step, strconv.Itoa(run), strconv.Itoa(question)},
	}.encode()
}

func buildScoreRestartCallback() string {
	return callbackData{Action: actionScore, Params: []string{scoreRestart}}.encode()
}

// parseAction turns callback data into a state machine action. categories is
// the list the category keyboard was built from.
func parseAction(data string, categories []string) (service.Action, error) {
	cd := decodeCallback(data)
	if len(cd.Params) == 0 {
		return service.Action{}, ErrInvalidCallback
	}

	switch cd.Action {
	case actionHome:
		if cd.Params[0] == homeStart && len(cd.Params) == 1 {
			return service.StartHome(), nil
		}

	case actionCategory:
		switch cd.Params[0] {
		case categoryStart:
			if len(cd.Params) == 1 {
				return service.StartQuiz(), nil
			}
		case categoryPick:
			return parseCategoryPick(cd.Params[1:], categories)
		}

	case actionQuiz:
		return parseQuizAction(cd.Params)

	case actionScore:
		if cd.Params[0] == scoreRestart && len(cd.Params) == 1 {
			return service.Restart(), nil
		}
	}

	return service.Action{}, ErrInvalidCallback
}

func parseCategoryPick(params []string, categories []string) (service.Action, error) {
	if len(params) != 1 {
		return service.Action{}, ErrInvalidCallback
	}

	idx, err := strconv.Atoi(params[0])
	if err != nil {
		return service.Action{}, ErrInvalidCallback
	}

	if idx == placeholderIndex {
		return service.SelectCategory(""), nil
	}
	if idx < 0 || idx >= len(categories) {
		return service.Action{}, ErrInvalidCallback
	}

	return service.SelectCategory(categories[idx]), nil
}

func parseQuizAction(params []string) (service.Action, error) {
	nums, err := atoiAll(params[1:])
	if err != nil {
		return service.Action{}, ErrInvalidCallback
	}

	switch params[0] {
	case quizOption:
		if len(nums) == 3 {
			return service.ChooseOption(nums[0], nums[1], nums[2]), nil
		}
	case quizSubmit:
		if len(nums) == 2 {
			return service.Submit(nums[0], nums[1]), nil
		}
	case quizNext:
		if len(nums) == 2 {
			return service.Next(nums[0], nums[1]), nil
		}
	case quizScore:
		if len(nums) == 2 {
			return service.ViewScore(nums[0], nums[1]), nil
		}
	}

	return service.Action{}, ErrInvalidCallback
}

func atoiAll(params []string) ([]int, error) {
	nums := make([]int, 0, len(params))
	for _, p := range params {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}
