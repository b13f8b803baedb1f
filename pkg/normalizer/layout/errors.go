package layout

import "errors"

// ErrBadColumnLabel indicates a column label with characters outside A-Z.
// Layout configuration is static, so hitting this means a configuration
// bug, not bad survey data.
var ErrBadColumnLabel = errors.New("malformed column label")

// ErrUnknownSurveyType indicates a survey-type value that matches no
// registered layout.
var ErrUnknownSurveyType = errors.New("unknown survey type")

// ErrRowTooShort indicates a raw row with fewer cells than the layout's
// highest configured column.
var ErrRowTooShort = errors.New("row too short for layout")
