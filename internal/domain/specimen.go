package domain

// Specimen is one selectable rose on the lab bench.
type Specimen struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	ScientificName string `yaml:"scientific_name"`
	Color          string `yaml:"color"`
	Molecule       string `yaml:"molecule"`
	Description    string `yaml:"description"`
	Effect         string `yaml:"effect"`
}

// Diagnosis is the outcome revealed for a specimen at the end of a test.
// ColorClass and HexColor describe the same color in two forms.
type Diagnosis struct {
	Title       string `yaml:"title"`
	ColorClass  string `yaml:"color_class"`
	HexColor    string `yaml:"hex_color"`
	Observation string `yaml:"observation"`
	Conclusion  string `yaml:"conclusion"`
}
