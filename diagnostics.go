package attachpipe

// PluginInfo is one row of the diagnostics enumeration consumed by debug
// tooling.
type PluginInfo struct {
	Kind     Kind
	Name     string
	Priority int
	Enabled  bool
	Missing  []MissingCapability
}

// Plugins enumerates registered and disabled plugins across every kind,
// priority-ordered within a kind, disabled entries last with their
// remediation reasons.
func (e *Engine) Plugins() []PluginInfo {
	var infos []PluginInfo
	for _, kind := range e.registry.Kinds() {
		for _, entry := range e.registry.All(kind) {
			infos = append(infos, PluginInfo{
				Kind:     kind,
				Name:     entry.Name,
				Priority: entry.Priority,
				Enabled:  true,
			})
		}
		for _, d := range e.registry.Disabled(kind) {
			infos = append(infos, PluginInfo{
				Kind:    kind,
				Name:    d.Name(),
				Enabled: false,
				Missing: d.Missing(),
			})
		}
	}
	return infos
}
