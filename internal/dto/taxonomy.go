package dto

// AddKeywordRequest attributes an activity to an existing category. Type is
// optional; without it the category is looked up in the expense table first.
type AddKeywordRequest struct {
	Classification string `json:"classification"`
	Activity       string `json:"activity"`
	Type           string `json:"type,omitempty"`
}

type AddCategoryRequest struct {
	NewClassification string `json:"new_classification"`
	SelectedActivity  string `json:"selected_activity"`
	ChosenType        string `json:"chosen_type"`
}

type OptionsResponse struct {
	Options []string `json:"options"`
}

type MessageResponse struct {
	Message        string `json:"message"`
	Classification string `json:"classification,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
