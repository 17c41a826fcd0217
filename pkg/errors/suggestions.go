package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryConnection:
		return g.generateConnectionSuggestions(affectedPath)
	case CategoryIndex:
		return g.generateIndexSuggestions(affectedPath)
	case CategoryEmpty:
		return g.generateEmptySuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions(location string) []string {
	suggestions := []string{
		"Check that the device is powered on and reachable on the network",
		"Ensure an SSH key is loaded in ssh-agent or present in ~/.ssh",
		"Add the device to ~/.ssh/known_hosts or pass --insecure-ignore-host-key",
	}

	if location != "" {
		suggestions = append(suggestions, "Try connecting manually: sftp "+location)
	}

	return suggestions
}

func (g *suggestionGenerator) generateEmptySuggestions(path string) []string {
	suggestions := []string{
		"Copy at least one .gif file into the directory",
		"Names starting with '_', '~' or '.' are ignored",
		"Check that --match does not exclude every file",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("List qualifying files with 'gifpick list %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generateIndexSuggestions(path string) []string {
	suggestions := []string{
		"Indexes start at 0 and must be below the file count",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check the file count with 'gifpick count %s'", path))
	} else {
		suggestions = append(suggestions, "Check the file count with 'gifpick count DIR'")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure the storage card holding "+path+" is mounted")
	} else {
		suggestions = append(suggestions, "Ensure the storage card is mounted")
	}

	suggestions = append(suggestions, "Raise --path-capacity if the file path is longer than the buffer")

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read permission for the directory and its files",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Run again with --log-level debug to see each scanned entry",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
