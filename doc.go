// Package scatter draws interactive scatter plots.
//
// It builds on gonum.org/v1/plot: scales are computed from the data,
// markers, axes, labels and the legend are drawn through a gonum
// draw.Canvas. Package svgdom renders the same Plot as an SVG document
// whose elements carry ids and classes for use in a web page.
//
// Scales
//
// A Plot has three scales:
//   - X-Scale        linear, data range padded by 5% on both sides,
//                    mapped to [margin, width-margin]
//   - Y-Scale        like X but inverted: larger values are further up
//   - Radius-Scale   square root, unpadded data range mapped to [4, 12]
//                    so marker areas grow linearly with the value
//
// Colors come from a Categorical scale over the distinct values of the
// color channel in order of first appearance.
//
// Coordinates
//
// Plots are laid out in user units, 1000 x 1000 by default, with the
// origin in the top left corner and y growing downwards. Drawing stretches
// the user units over the target canvas.
//
// Interaction
//
// The Brush selects the records inside a rectangular region: Start clears
// the selection, Move and End select every record whose data values lie
// inside the inverse mapped region, borders included. Clicking a legend
// row (Plot.Click) toggles the opacity of its category between 1 and 0.2.
// Interaction state is only used when the plot is drawn again.
package scatter
