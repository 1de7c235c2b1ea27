// Package render draws a board, its policy and its value function, either as
// a colored terminal grid (aurora) or as an HTML heatmap page (go-echarts).
//
// Terminal cells: S in yellow, H in blue, G in green; every other cell shows
// the policy's arrow (↑ → ↓ ←) or · when the policy absorbs there.
package render
