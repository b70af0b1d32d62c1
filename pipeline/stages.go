package pipeline

// StageInfo describes one pipeline stage for the introspection endpoint.
type StageInfo struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// stageOrder lists the stages in execution order.
var stageOrder = []StageInfo{
	{
		Name:        "extract",
		Label:       "Field Extraction",
		Description: "Locate labeled sections in speaker packets and resolve headshot references",
	},
	{
		Name:        "gap-fill",
		Label:       "Gap Filling",
		Description: "Synthesize titles, descriptions, and tech requirements for missing fields",
	},
	{
		Name:        "shape",
		Label:       "Content Shaping",
		Description: "Produce bio variants, session abstract, takeaways, and alt text",
	},
	{
		Name:        "quality-control",
		Label:       "Quality Control",
		Description: "Check headshots, lengths, buzzwords, tech requirements, and name consistency",
	},
	{
		Name:        "report",
		Label:       "Report Assembly",
		Description: "Assemble content and QC tables into a styled spreadsheet",
	},
}

// Stages returns the pipeline stages in execution order.
func Stages() []StageInfo {
	out := make([]StageInfo, len(stageOrder))
	copy(out, stageOrder)
	return out
}
