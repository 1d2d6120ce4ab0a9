package question

import "fmt"

// RowsPerImage returns how many rows BuildForImage produces for one image.
func RowsPerImage(templates Templates, countries int) int {
	return len(templates.General) + len(templates.Type) + 1 + countries
}

// BuildForImage returns the ordered question rows for one image file name:
// general prompts, type prompts, the model question, then one question per
// country in the given order.
func BuildForImage(imageName string, countries []string, attr Attribution, templates Templates) []Row {
	rows := make([]Row, 0, RowsPerImage(templates, len(countries)))
	row := func(text string, answer AnswerType, category Category) Row {
		return Row{
			ImageName:  imageName,
			Question:   text,
			AnswerType: answer,
			Category:   category,
			Author:     attr.Author,
			Course:     attr.Course,
			Semester:   attr.Semester,
		}
	}

	for _, text := range templates.General {
		rows = append(rows, row(text, AnswerYesNo, CategoryGeneral))
	}
	for _, text := range templates.Type {
		rows = append(rows, row(text, AnswerOpenEnded, CategoryType))
	}

	model := row(fmt.Sprintf("Is this ship a %s?", InferModel(imageName)), AnswerYesNo, CategoryModel)
	model.Notes = NoteInferredFromFilename
	rows = append(rows, model)

	for _, country := range countries {
		r := row(fmt.Sprintf("Is this ship from %s?", country), AnswerYesNo, CategoryCountry)
		r.Country = country
		rows = append(rows, r)
	}
	return rows
}

// BuildAll concatenates BuildForImage for every image name, preserving order.
func BuildAll(imageNames []string, countries []string, attr Attribution, templates Templates) []Row {
	rows := make([]Row, 0, len(imageNames)*RowsPerImage(templates, len(countries)))
	for _, name := range imageNames {
		rows = append(rows, BuildForImage(name, countries, attr, templates)...)
	}
	return rows
}
