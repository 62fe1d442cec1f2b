package chart

import "errors"

// ErrNotLoaded indicates an operation that needs the dataset ran before it
// was loaded.
var ErrNotLoaded = errors.New("chart: dataset not loaded")
