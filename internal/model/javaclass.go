package model

// MethodSignature is one public method extracted from Java source by the
// line-pattern matcher. This is best-effort text matching, not parsing.
type MethodSignature struct {
	ReturnType string
	Name       string
	Params     string
}

// ClassReport is the result of inspecting a Java source file.
type ClassReport struct {
	Path    string
	Package string
	Class   string
	Methods []MethodSignature
}
