package treeio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/arbor"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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

// progressBatch is the broadcast granularity of a background load, in
// tree nodes.
const progressBatch = 64

// Progress reports the state of an ongoing load.
type Progress struct {
	Nodes int   // tree nodes staged so far
	Done  bool  // true for the final message of a load
	Err   error // set if the load failed
}

// Loader reads the pair format in a background goroutine, broadcasting
// Progress messages to any number of subscribers.
type Loader struct {
	cast   *caster.Caster // broadcaster for async loading
	done   chan struct{}
	mx     sync.Mutex // guards forest and err
	forest []arbor.Tree[string]
	err    error
}

// StartLoad starts reading pairs from r in the background and returns
// immediately. Clients collect the result with Wait and may watch the
// load with Subscribe. ctx cancels the load; it may be nil.
func StartLoad(ctx context.Context, r io.Reader) *Loader {
	if ctx == nil {
		ctx = context.Background()
	}
	ld := &Loader{
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
	go ld.run(ctx, r)
	return ld
}

// Load reads the pair format from r and returns the forest it encodes.
// It is the synchronous twin of StartLoad.
func Load(ctx context.Context, r io.Reader) ([]arbor.Tree[string], error) {
	return StartLoad(ctx, r).Wait()
}

// Wait blocks until the load has finished and returns its result. It
// may be called any number of times, from any goroutine.
func (ld *Loader) Wait() ([]arbor.Tree[string], error) {
	<-ld.done
	ld.mx.Lock()
	defer ld.mx.Unlock()
	return ld.forest, ld.err
}

// Subscribe registers a watcher for Progress messages. The returned
// channel is closed when the load finishes. ok is false if the load has
// already finished, in which case clients just call Wait. ctx may be
// used to end the subscription early; it may be nil.
func (ld *Loader) Subscribe(ctx context.Context) (<-chan Progress, bool) {
	ch, ok := ld.cast.Sub(ctx, progressBatch)
	if !ok {
		return nil, false
	}
	out := make(chan Progress, progressBatch)
	go func() {
		defer close(out)
		for m := range ch {
			if p, ok := m.(Progress); ok {
				out <- p
			}
		}
	}()
	return out, true
}

// run scans pairs into a builder, publishing progress every
// progressBatch nodes and a final Done message before closing down.
func (ld *Loader) run(ctx context.Context, r io.Reader) {
	defer close(ld.done)
	defer ld.cast.Close()
	b := arbor.NewBuilder[string]()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, sixtyfourKb), oneMb)
	nodes := 0
	lineno := 0
	var err error
	for scanner.Scan() {
		if err = ctx.Err(); err != nil {
			break
		}
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		var count int
		var value string
		count, value, err = splitPair(line)
		if err == nil {
			err = b.AddPair(count, value)
		}
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineno, err)
			break
		}
		nodes++
		if nodes%progressBatch == 0 {
			ld.cast.Pub(Progress{Nodes: nodes})
		}
	}
	if err == nil {
		err = scanner.Err()
	}
	ld.mx.Lock()
	if err != nil {
		ld.err = err
	} else {
		ld.forest = b.Forest()
	}
	ld.mx.Unlock()
	tracer().P("load", "pairs").Debugf("loaded %d tree nodes", nodes)
	ld.cast.Pub(Progress{Nodes: nodes, Done: true, Err: err})
}
