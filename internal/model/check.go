package model

// ClientDirective tells a polling client whether to delete itself and/or quit.
type ClientDirective struct {
	Delete bool `json:"delete"`
	Quit   bool `json:"quit"`
}
