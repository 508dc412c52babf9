package mapview

import "signalalert/model"

type Icon struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Size       [2]int `json:"size"`
	Anchor     [2]int `json:"anchor"`
	Popup      [2]int `json:"popup_anchor"`
	Shadow     string `json:"shadow_url"`
	ShadowSize [2]int `json:"shadow_size"`
	Default    bool   `json:"default,omitempty"`
}

const markerBase = "https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/"

func colorIcon(color string) Icon {
	return Icon{
		Name:       color,
		URL:        markerBase + "marker-icon-" + color + ".png",
		Size:       [2]int{25, 41},
		Anchor:     [2]int{12, 41},
		Popup:      [2]int{1, -34},
		Shadow:     "https://cdnjs.cloudflare.com/ajax/libs/leaflet/0.7.7/images/marker-shadow.png",
		ShadowSize: [2]int{41, 41},
	}
}

var typeIcons = map[model.ReportType]Icon{
	model.TypeLost:    colorIcon("red"),
	model.TypeMissing: colorIcon("orange"),
	model.TypeStolen:  colorIcon("black"),
}

// DefaultIcon is used for types outside the fixed table.
var DefaultIcon = func() Icon {
	i := colorIcon("blue")
	i.Default = true
	return i
}()

func IconFor(t model.ReportType) Icon {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return DefaultIcon
}
