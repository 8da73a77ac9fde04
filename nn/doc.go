// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layer-style adapter between a host framework and
// the adaconv evaluator backends.
//
// # Overview
//
// The host framework owns every tensor buffer, persists filter weights
// across training steps, and invokes Forward before Backward with matching
// shapes. AdaptiveConv2D sits on that boundary: it resolves and caches
// geometry, returns ShapeError for invalid configurations before any
// computation begins, and dispatches the passes to whichever backend it was
// constructed with.
//
// # Basic Usage
//
//	import (
//	    "github.com/adaconv-ml/adaconv"
//	    "github.com/adaconv-ml/adaconv/backend/parallel"
//	    "github.com/adaconv-ml/adaconv/nn"
//	)
//
//	layer := nn.NewAdaptiveConv2D(adaconv.Dense, parallel.New())
//	out, err := layer.Forward(image, filter)
//	if err != nil {
//	    // fatal configuration error, surface to the user
//	}
//	dfilter, err := layer.Backward(upstream, image, filter)
//
// # Training integration
//
// BindFilter registers the filter as a trainable Parameter; Backward then
// deposits the filter gradient on it, where the host's optimizer picks it
// up. Gradients with respect to the image are never produced.
package nn
