// Package display holds the view models commands hand to renderers.
// Every type here is plain data with JSON tags so the JSON renderer can
// emit it unchanged.
package display

// Instance is one Catalog instance as shown to the user
type Instance struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PackVersion string `json:"packVersion"`
	GameVersion string `json:"gameVersion"`
	Loader      string `json:"loader"`
	Linked      bool   `json:"linked"`
}

// ListResult is the output of the list command
type ListResult struct {
	CatalogRoot string     `json:"catalogRoot"`
	HostRoot    string     `json:"hostRoot"`
	Instances   []Instance `json:"instances"`

	// HostError is set when the Host could not be resolved; linked state
	// is then reported as false for every instance
	HostError string `json:"hostError,omitempty"`
}

// StatusResult describes a single instance in detail
type StatusResult struct {
	Instance   Instance `json:"instance"`
	CatalogDir string   `json:"catalogDir"`
	HostFolder string   `json:"hostFolder"`
	Alias      string   `json:"alias"`
	AliasTo    string   `json:"aliasTo,omitempty"`
	HasIcon    bool     `json:"hasIcon"`
	IconTarget string   `json:"iconTarget,omitempty"`
}

// ActionResult reports the outcome of link, unlink or toggle
type ActionResult struct {
	Action   string   `json:"action"`
	Instance Instance `json:"instance"`
	Message  string   `json:"message"`
}

// ConfigResult shows the resolved configuration
type ConfigResult struct {
	File        string `json:"file"`
	CatalogRoot string `json:"catalogRoot"`
	HostRoot    string `json:"hostRoot"`
	Sort        string `json:"sort"`
	Saved       bool   `json:"saved,omitempty"`
}
