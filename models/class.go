package models

// Class is one taxonomy dimension (e.g. "platform") with its enumerated
// options. The taxonomy is fixed and seeded by migrations; every program is
// tagged with exactly one value per class at creation time.
type Class struct {
	ClassID int64         `json:"id"`
	Name    string        `json:"name"`
	Options []ClassOption `json:"options"`
}

// ClassOption is one selectable value belonging to a class.
type ClassOption struct {
	OptionID int64  `json:"id"`
	Value    string `json:"value"`
}

// ClassTag is a resolved (class name, value) pair attached to a program.
type ClassTag struct {
	ClassName string `json:"class"`
	Value     string `json:"value"`
}
