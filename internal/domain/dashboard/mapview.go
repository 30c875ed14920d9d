package dashboard

import "rescue-dashboard/internal/domain/animals"

const (
	DefaultZoom    = 11
	PopupHeading   = "Animal"
	NoLocationText = "No location data."
)

// Marker es el único marcador del mapa: la fila seleccionada.
type Marker struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Tooltip      string  `json:"tooltip"`
	PopupHeading string  `json:"popup_heading"`
	PopupBody    string  `json:"popup_body"`
}

// MapView describe lo que el cliente dibuja: un marcador centrado o un placeholder.
type MapView struct {
	Center      *[2]float64 `json:"center,omitempty"`
	Zoom        int         `json:"zoom"`
	Markers     []Marker    `json:"markers"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// BuildMap arma el mapa para la fila seleccionada del subset visible.
// Sin filas, o sin coordenadas en la fila, devuelve el placeholder y ningún marcador.
func BuildMap(v ViewState) MapView {
	m := MapView{Zoom: DefaultZoom, Markers: []Marker{}}

	r, ok := v.SelectedRecord()
	if !ok {
		m.Placeholder = NoLocationText
		return m
	}
	lat, lon, ok := r.Coordinates()
	if !ok {
		m.Placeholder = NoLocationText
		return m
	}

	m.Center = &[2]float64{lat, lon}
	m.Markers = append(m.Markers, markerFor(r, lat, lon))
	return m
}

func markerFor(r animals.Record, lat, lon float64) Marker {
	return Marker{
		Lat:          lat,
		Lon:          lon,
		Tooltip:      r.Breed,
		PopupHeading: PopupHeading,
		PopupBody:    r.Name,
	}
}
