package question

var defaultGeneral = []string{
	"Is this a ship?",
	"Is this a military vessel?",
	"Is the ship at sea?",
	"Is this a top-down view?",
}

var defaultType = []string{
	"What type of ship is shown?",
	"Which class does this vessel likely belong to?",
	"Identify the general category of this ship.",
	"What is the ship's primary mission or role?",
	"Name the ship category (e.g., tanker, destroyer, carrier).",
	"Describe the ship type based on visible features.",
}

// DefaultTemplates returns a fresh copy of the built-in prompt sets.
func DefaultTemplates() Templates {
	return Templates{
		General: append([]string(nil), defaultGeneral...),
		Type:    append([]string(nil), defaultType...),
	}
}
