/*
Package preview renders writer buffers to a terminal for debugging code
generators.

Generated output is easy to get subtly wrong: an indent scope left open,
a stray blank line at the end of a loop, a comment paragraph wrapped one
column past the style guide's limit. Diffing rendered strings in a test
tells that something is off, but not where. Package preview prints a
writer's buffer the way a terminal-minded developer wants to inspect it:

▪︎ every buffer line numbered, so failures in golden-file diffs can be
found again quickly,

▪︎ leading whitespace made visible ('·' per space, '→' per tab), so
indentation bugs and tab/space mixups stand out,

▪︎ lines wider than the generator's target width flagged with an overflow
mark and their actual width, measured in terminal columns under UAX#11
rules rather than bytes.

API

Clients hand a writer and an optional configuration to Print or Fprint.
A nil configuration is filled in from the current terminal's properties.

	w := scribe.NewWriter(scribe.Options{})
	// … generate …
	preview.Print(w, nil)

Status

The palette is fixed per call; per-line-range highlighting may come later.

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
package preview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scribe'
func tracer() tracing.Trace {
	return tracing.Select("scribe")
}
