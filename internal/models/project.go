package models

// Project represents a student-led project shown in the project feed
type Project struct {
	ID          int      `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Student     string   `json:"student" yaml:"student" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags,omitempty" yaml:"tags" validate:"dive,required"`
}
