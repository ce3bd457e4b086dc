package domain

// Technique is the top-level entity parsed from a technique YAML file.
type Technique struct {
	ID          string // attack_technique, e.g. "T1070.004"
	DisplayName string
	Tests       []Test // atomic_tests, in document order
}

// Test is one atomic test under a Technique.
type Test struct {
	Name               string
	Description        string
	SupportedPlatforms []string // in document order, duplicates kept
	AutoGeneratedGUID  string
	InputArguments     []InputArgument // in document order
	Executor           Executor
}

// InputArgument is a named, typed parameter with a default value usable
// inside command text via a #{name} placeholder.
type InputArgument struct {
	Name        string
	Description string
	Type        string
	Default     string // scalar rendered to its string form; "" when null
}

// Executor identifies the command interpreter for a test and carries its
// attack and cleanup command text.
type Executor struct {
	Name              string
	ElevationRequired bool
	Command           string
	CleanupCommand    string
}

// TestView is a fully normalized, substituted test ready for rendering.
// Commands have placeholders resolved; Inputs keep raw default values.
type TestView struct {
	Ordinal            int // 1-based position within the technique
	Name               string
	Description        string
	SupportedPlatforms []string
	AutoGeneratedGUID  string
	Inputs             []InputArgument
	ExecutorName       string
	ElevationRequired  bool
	FenceLang          string // "" means an untagged fence
	Command            string
	CleanupCommand     string
	HasCleanup         bool
}

// Section is one rendered test section plus the anchor its TOC entry
// points at. Anchors are collected before the final document is assembled.
type Section struct {
	Ordinal int
	Heading string
	Anchor  string
	Body    string
}
