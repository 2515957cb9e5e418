// Package chart builds and renders ranked song charts.
//
// # Building
//
// A Builder stamps each song's comparator from a sort key and inserts
// the songs into an ordered list:
//
//	builder := chart.NewBuilder(chart.SortByPopularity)
//	list := builder.Build(songs)
//
//	top := chart.Top(list, 40)
//
// # Rendering
//
// A Renderer turns the ranked songs into output:
//
//	renderer := chart.NewRenderer(chart.FormatText, false)
//	content, err := renderer.Render("Top 40 by popularity", top)
//
// Supported formats:
//   - Text (ranked terminal listing)
//   - CSV
//   - M3U (with optional extended info)
//   - JSON
package chart
