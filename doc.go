// Package rapp implements a raster processing primitive library for
// computer-vision pipelines: an abstract vector compute-dispatch
// layer, a bit-packed binary raster data model, and the bitblit,
// morphology, gather/scatter, contour-tracing, and statistics
// operation families built on top of it.
//
// Every exported operation follows the same shell: validate its
// image arguments, check for overlap between buffers that may not
// alias, then dispatch to an internal driver. Call Initialize before
// using any operation and Terminate when done; see lifecycle.go.
package rapp
