// Package contour traces iso-contours through binary sample grids using
// the marching squares algorithm.
//
// Every cell of a Grid has four corners, p0 to p3 in clockwise order
// starting at the top-left.  Classify samples a Field at the corners and
// maps the resulting Pattern to an edge rule Code; Trace turns the code
// into zero, one or two Segments between edge midpoints.  March runs both
// steps over a whole grid and passes the segments to a Sink.
//
// The two checkerboard patterns FTFT and TFTF are ambiguous.  They are
// resolved by separate codes, CodeSaddleTopLeft and CodeSaddleTopRight,
// each of which cuts off the two "off" corners with non-crossing segments.
package contour
