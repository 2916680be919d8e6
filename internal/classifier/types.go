package classifier

// Category labels a kind of task for correction statistics.
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryExercise Category = "exercise"
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryFood     Category = "food"
	CategoryGeneral  Category = "general"
)

// Categories lists every label in prompt order.
var Categories = []Category{
	CategoryStudy, CategoryExercise, CategoryPersonal, CategoryWork, CategoryFood, CategoryGeneral,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Input is the part of a task the classifier looks at.
type Input struct {
	Title       string
	Description string
}

// llmOutput is the structured response of the model-backed classifier.
type llmOutput struct {
	Category   Category `json:"category"`
	Confidence int      `json:"confidence"`
}

func (o *llmOutput) Validate() error {
	if !o.Category.Valid() {
		return errUnknownCategory
	}
	return nil
}
