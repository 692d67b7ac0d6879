package i18n

import "errors"

var (
	// Translator setup
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode = errors.New("empty language code found")
	ErrNilTranslations   = errors.New("nil translations map for language")
	ErrInvalidCatalog    = errors.New("invalid translation catalog")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")
	ErrNoCatalogFiles       = errors.New("no valid translation files found")
	ErrFailedToReadDir      = errors.New("failed to read translation directory")
)
