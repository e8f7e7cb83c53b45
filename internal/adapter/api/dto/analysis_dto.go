package dto

import "github.com/agrisense/plant-chatbot/pkg/analysis"

// AnalysisResponse carries the rich display model for the chat bubble
// and the plain summary that was appended to the conversation log.
type AnalysisResponse struct {
	Result  analysis.Display `json:"result"`
	Summary string           `json:"summary"`
}
