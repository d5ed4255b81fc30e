/*
Package scribe is a text-emission engine for programmatic code generators.

Scribe

Programs that write programs (schema compilers, API-client generators,
scaffolding tools) all end up solving the same small layout problems:
keeping track of the current indentation level, opening and closing brace
blocks in one of the usual styles, filling comment paragraphs to a target
width, and laying out argument lists either on one line or one item per
line. Doing this with raw string concatenation scatters layout decisions
over the whole generator and makes them impossible to change afterwards.

Scribe centralizes these decisions in a Writer: a buffer of complete lines
together with the indentation state that new lines are emitted under.
Generators call Emit for single lines, open scopes with Indent or Block,
and fill prose with EmitWrappedText; the buffer is rendered to a string
(or streamed to an io.Writer) once the generator is done. Widths are
measured in terminal columns, using grapheme segmentation and the rules of
UAX#11 (East Asian Width), so that generated headers and comment boxes
line up even when identifiers or doc strings carry non-Latin characters.

The classic treatment of layout as a small algebra of blocks and line
breaks is Oppen's “Prettyprinting” (TOPLAS 1980). Scribe is intentionally
simpler than that: code generators rarely need optimal line breaking, but
they constantly need stable, predictable indentation and alignment. The
engine therefore never re-flows what a generator has emitted: every
operation appends lines deterministically, which keeps golden-file tests
of generator output byte-stable.

Two helper packages accompany the engine: package casing converts
identifier names between camelCase, PascalCase, dashed and underscored
spellings, and package preview renders a writer's buffer to a terminal
for debugging a generator (line numbers, visible indentation, overflow
marks).

A Writer is not safe for concurrent use. Generators that produce sections
in parallel should give each goroutine its own Writer and combine the
rendered results.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package scribe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scribe'
func tracer() tracing.Trace {
	return tracing.Select("scribe")
}
