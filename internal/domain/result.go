package domain

// Result is the structured outcome every mutation returns; storage errors
// never escape past it.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func OK() Result              { return Result{Success: true} }
func Fail(code string) Result { return Result{Success: false, Error: code} }

// BulkResult reports a batch outcome. Partial means some requested ids were
// blocked by dependent rows; Names carries their display names.
type BulkResult struct {
	Success bool   `json:"success"`
	Partial bool   `json:"partial,omitempty"`
	Count   int    `json:"count"`
	Names   string `json:"names,omitempty"`
	Error   string `json:"error,omitempty"`
}

func BulkFail(code string) BulkResult { return BulkResult{Success: false, Error: code} }
