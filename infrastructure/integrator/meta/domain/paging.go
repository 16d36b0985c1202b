package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// HasNext indica se existe uma próxima página alcançável pelo cursor after
func (p *Paging) HasNext() bool {
	return p != nil && p.Next != "" && p.Cursors.After != ""
}
