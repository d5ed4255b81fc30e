/*
Package casing converts identifier names between spelling conventions.

Code generators constantly re-spell names: a wire-format field called
“line-item_id” may surface as LineItemID in one target language and
line_item_id in another. Package casing splits identifier-like strings
into their constituent words, by separator characters and by case
boundaries with acronym handling, and re-joins them in camelCase,
PascalCase, dashed or underscored form.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package casing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scribe'
func tracer() tracing.Trace {
	return tracing.Select("scribe")
}
