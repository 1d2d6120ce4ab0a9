package question

// AnswerType describes the kind of answer a question expects.
type AnswerType string

// Answer types written to the answer_type column.
const (
	AnswerYesNo     AnswerType = "yes/no"
	AnswerOpenEnded AnswerType = "open-ended"
)

// Category groups questions by what they ask about.
type Category string

// Categories written to the category column.
const (
	CategoryGeneral Category = "general"
	CategoryType    Category = "type"
	CategoryModel   Category = "model"
	CategoryCountry Category = "country"
)

// NoteInferredFromFilename marks model questions whose hint came from the file name.
const NoteInferredFromFilename = "inferred_from_filename"

// Row is one VQA prompt for one image.
type Row struct {
	ImageName  string
	Question   string
	AnswerType AnswerType
	Category   Category
	Country    string
	Notes      string
	Author     string
	Course     string
	Semester   string
}

// Attribution is copied onto every row of a run.
type Attribution struct {
	Author   string
	Course   string
	Semester string
}

// Templates holds the fixed prompt sets asked of every image.
type Templates struct {
	General []string `json:"general" yaml:"general"`
	Type    []string `json:"type" yaml:"type"`
}
