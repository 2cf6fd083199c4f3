package entity

// DispatchResult is the outcome of notifying the emergency-dispatch service.
type DispatchResult struct {
	Success    bool   `json:"success"`
	DispatchID string `json:"dispatch_id,omitempty"`
	Error      string `json:"error,omitempty"`
	Region     string `json:"region,omitempty"`
}
