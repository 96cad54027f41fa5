package form

import "github.com/jwalitptl/woundcare-api/internal/model"

// LumenNames returns the default lumen names for a catheter of the given type
// and lumen count. The count is clamped to the supported range.
func LumenNames(t model.DeviceType, n int) []string {
	switch clampLumens(n) {
	case 1:
		return []string{"Único"}
	case 2:
		if t == model.DeviceMidLine || t == model.DevicePiccLine {
			return []string{"Rojo", "Azul"}
		}
		return []string{"", ""}
	case 3:
		return []string{"Proximal", "Medial", "Distal"}
	case 4:
		return []string{"Proximal", "Medial 1", "Medial 2", "Distal"}
	default:
		return []string{"Proximal", "Medial 1", "Medial 2", "Medial 3", "Distal"}
	}
}

// DefaultLumenCount is the lumen count a freshly typed device starts with.
func DefaultLumenCount(t model.DeviceType) int {
	switch t {
	case model.DeviceCVC:
		return 3
	case model.DeviceMidLine, model.DevicePiccLine:
		return 2
	case model.DeviceArterialLine:
		return 1
	}
	return 0
}

func buildLumens(t model.DeviceType, n int) []model.LumenRecord {
	names := LumenNames(t, n)
	out := make([]model.LumenRecord, len(names))
	for i, name := range names {
		out[i] = model.LumenRecord{Name: name, Patency: model.PatencyInfuseReflux}
	}
	return out
}

func clampLumens(n int) int {
	return max(model.MinLumens, min(n, model.MaxLumens))
}
