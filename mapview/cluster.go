package mapview

import "signalalert/model"

// ClusterGroup collects markers per report type for the map page, where the
// browser draws them as marker clusters.
type ClusterGroup struct {
	groups map[string][]Marker
	order  []string
	bounds Bounds
	fitted bool
	notice string
}

func NewClusterGroup() *ClusterGroup {
	return &ClusterGroup{groups: make(map[string][]Marker)}
}

func (g *ClusterGroup) AddMarker(m Marker) {
	if _, ok := g.groups[m.Type]; !ok {
		g.order = append(g.order, m.Type)
	}
	g.groups[m.Type] = append(g.groups[m.Type], m)
}

func (g *ClusterGroup) FitBounds(b Bounds) {
	g.bounds = b
	g.fitted = true
}

func (g *ClusterGroup) ShowError(notice string) {
	g.notice = notice
	g.groups = make(map[string][]Marker)
	g.order = nil
	g.fitted = false
}

type Group struct {
	Type    string   `json:"type"`
	Label   string   `json:"label"`
	Markers []Marker `json:"markers"`
}

type View struct {
	Groups []Group `json:"groups"`
	Count  int     `json:"count"`
	Bounds *Bounds `json:"bounds,omitempty"`
	Error  string  `json:"error,omitempty"`
}

var groupLabels = map[model.ReportType]string{
	model.TypeLost:    "Objets perdus",
	model.TypeMissing: "Personnes disparues",
	model.TypeStolen:  "Choses volées",
}

// View returns the collected state in insertion order of the types.
func (g *ClusterGroup) View() View {
	v := View{Groups: make([]Group, 0, len(g.order)), Error: g.notice}
	for _, t := range g.order {
		markers := g.groups[t]
		v.Groups = append(v.Groups, Group{
			Type:    t,
			Label:   groupLabels[model.ReportType(t)],
			Markers: markers,
		})
		v.Count += len(markers)
	}
	if g.fitted {
		b := g.bounds
		v.Bounds = &b
	}
	return v
}
