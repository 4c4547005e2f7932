package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *WikiError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *WikiError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *WikiError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Build pipeline errors

func BuildFailed(stage string, cause error) *WikiError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "build failed").
		WithContext("stage", stage)
}

func OutputError(operation string, cause error) *WikiError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output tree operation failed").
		WithContext("operation", operation)
}

func RenderError(page string, cause error) *WikiError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page rendering failed").
		WithContext("page", page)
}

func TemplateError(cause error) *WikiError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page template unusable")
}

// Source errors

func SourceCloneError(url string, cause error) *WikiError {
	return Wrap(cause, CategoryGit, SeverityFatal, "source snapshot clone failed").
		WithContext("url", url)
}

func WorkspaceError(operation string, cause error) *WikiError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "workspace operation failed").
		WithContext("operation", operation)
}
