package corpus

// GutenbergRecord represents a record from the Project Gutenberg dataset
// Dataset: https://huggingface.co/datasets/manu/project_gutenberg
type GutenbergRecord struct {
	ID   string `json:"id" parquet:"id,optional"`
	Text string `json:"text" parquet:"text"`
}
