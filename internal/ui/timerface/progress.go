package timerface

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var progressPathID = []byte(`id="progress-circle"`)

// SetRingProgress rewrites the progress-circle arc of an icon SVG so
// the arc endpoint reflects the elapsed fraction of the current phase.
// The arc must start at angle zero (three o'clock), so the circle
// center is recoverable from the move-to point and the radius.
func SetRingProgress(svg []byte, fraction float64) ([]byte, error) {
	if fraction < 0 {
		fraction = 0
	}
	// A full-circle arc endpoint coincides with its start and renders
	// as empty; stop just short.
	if fraction >= 1 {
		fraction = 0.9999
	}

	idIndex := bytes.Index(svg, progressPathID)
	if idIndex < 0 {
		return nil, fmt.Errorf("progress-circle path not found")
	}
	elementStart := bytes.LastIndexByte(svg[:idIndex], '<')
	elementLength := bytes.IndexByte(svg[idIndex:], '>')
	if elementStart < 0 || elementLength < 0 {
		return nil, fmt.Errorf("progress-circle element is malformed")
	}
	elementEnd := idIndex + elementLength

	element := svg[elementStart:elementEnd]
	marker := []byte(` d="`)
	dIndex := bytes.Index(element, marker)
	if dIndex < 0 {
		return nil, fmt.Errorf("progress-circle has no path data")
	}
	valueStart := dIndex + len(marker)
	valueLength := bytes.IndexByte(element[valueStart:], '"')
	if valueLength < 0 {
		return nil, fmt.Errorf("progress-circle path data is unterminated")
	}

	rewritten, err := rewriteArc(string(element[valueStart:valueStart+valueLength]), fraction)
	if err != nil {
		return nil, err
	}

	var result bytes.Buffer
	result.Write(svg[:elementStart+valueStart])
	result.WriteString(rewritten)
	result.Write(svg[elementStart+valueStart+valueLength:])
	return result.Bytes(), nil
}

// rewriteArc updates the endpoint and large-arc flag of the first A
// command in the path: "M x0 y0 A rx ry rot large sweep x y".
func rewriteArc(pathData string, fraction float64) (string, error) {
	parts := strings.Fields(pathData)

	arcPos := -1
	for i, part := range parts {
		if part == "A" {
			arcPos = i
			break
		}
	}
	if arcPos < 0 || arcPos < 3 || arcPos+7 >= len(parts) {
		return "", fmt.Errorf("path data has no usable arc command")
	}

	startX, err := strconv.ParseFloat(parts[arcPos-2], 64)
	if err != nil {
		return "", fmt.Errorf("parse arc start x: %w", err)
	}
	startY, err := strconv.ParseFloat(parts[arcPos-1], 64)
	if err != nil {
		return "", fmt.Errorf("parse arc start y: %w", err)
	}
	radius, err := strconv.ParseFloat(parts[arcPos+1], 64)
	if err != nil {
		return "", fmt.Errorf("parse arc radius: %w", err)
	}

	centerX := startX - radius
	centerY := startY

	radian := 2 * math.Pi * fraction
	if fraction > 0.5 {
		parts[arcPos+4] = "1"
	} else {
		parts[arcPos+4] = "0"
	}
	parts[arcPos+6] = strconv.FormatFloat(centerX+math.Cos(radian)*radius, 'f', 1, 64)
	parts[arcPos+7] = strconv.FormatFloat(centerY+math.Sin(radian)*radius, 'f', 1, 64)

	return strings.Join(parts, " "), nil
}
