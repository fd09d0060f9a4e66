package quiz

type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type ParsedQuestion struct {
	QuestionIndex  int      `json:"question_index"`
	Term           string   `json:"term"`
	Question       string   `json:"question"`
	Options        []Option `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
	FullDefinition string   `json:"full_definition"`
}
