package doctor

import (
	"fmt"

	"github.com/conn-castle/ext-installer/internal/config"
	"github.com/conn-castle/ext-installer/internal/install"
	"github.com/conn-castle/ext-installer/internal/manifest"
	"github.com/conn-castle/ext-installer/internal/messages"
	"github.com/conn-castle/ext-installer/internal/toolchain"
)

// CheckConfig reports where the configuration came from, or why it failed
// to load.
func CheckConfig(loaded *config.Loaded, err error) Result {
	result := Result{CheckName: messages.DoctorCheckNameConfig}
	switch {
	case err != nil:
		result.Status = StatusFail
		result.Message = fmt.Sprintf(messages.DoctorConfigFailedFmt, err)
	case loaded == nil || loaded.Source == "":
		result.Status = StatusOK
		result.Message = messages.DoctorConfigDefaults
	default:
		result.Status = StatusOK
		result.Message = fmt.Sprintf(messages.DoctorConfigLoadedFmt, loaded.Source)
	}
	return result
}

// CheckTools reports the detected toolchain. Only a missing IDE CLI fails;
// the packager and JSON tool have fallbacks.
func CheckTools(caps toolchain.Capabilities) []Result {
	ide := Result{CheckName: messages.DoctorCheckNameIDE}
	if caps.IDE.Available() {
		ide.Status = StatusOK
		ide.Message = fmt.Sprintf(messages.DoctorToolFoundFmt, caps.IDE.Name, caps.IDE.Path)
	} else {
		ide.Status = StatusFail
		ide.Message = fmt.Sprintf(messages.DoctorIDEMissingFmt, caps.IDE.Name)
		ide.Recommendation = messages.DoctorIDEMissingRecommend
	}

	return []Result{
		ide,
		optionalTool(messages.DoctorCheckNamePackager, caps.Packager, messages.DoctorPackagerMissingFmt, messages.DoctorPackagerRecommend),
		optionalTool(messages.DoctorCheckNameJSONTool, caps.JSON, messages.DoctorJSONToolMissingFmt, messages.DoctorJSONToolRecommend),
	}
}

func optionalTool(name string, tool toolchain.Tool, missingFmt string, recommend string) Result {
	if tool.Available() {
		return Result{
			Status:    StatusOK,
			CheckName: name,
			Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, tool.Name, tool.Path),
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      name,
		Message:        fmt.Sprintf(missingFmt, tool.Name),
		Recommendation: recommend,
	}
}

// CheckManifest reads and parses the manifest and reports its identity and
// current version.
func CheckManifest(sys install.System, path string) Result {
	result := Result{CheckName: messages.DoctorCheckNameManifest}
	data, err := sys.ReadFile(path)
	if err == nil {
		var m manifest.Manifest
		m, err = manifest.Parse(data, path)
		if err == nil {
			result.Status = StatusOK
			result.Message = fmt.Sprintf(messages.DoctorManifestOKFmt, path, m.Publisher, m.Name, m.Version)
			return result
		}
	}
	result.Status = StatusFail
	result.Message = fmt.Sprintf(messages.DoctorManifestFailedFmt, err)
	result.Recommendation = messages.DoctorManifestRecommend
	return result
}

// CheckLink reports what currently sits at the native binary link path.
func CheckLink(sys install.System, linkPath string) Result {
	result := Result{CheckName: messages.DoctorCheckNameLink}
	state, target, err := install.InspectLink(sys, linkPath)
	if err != nil {
		result.Status = StatusFail
		result.Message = err.Error()
		return result
	}
	switch state {
	case install.LinkOK:
		result.Status = StatusOK
		result.Message = fmt.Sprintf(messages.DoctorLinkOKFmt, linkPath, target)
	case install.LinkDangling:
		result.Status = StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorLinkDanglingFmt, linkPath, target)
		result.Recommendation = messages.DoctorLinkRecommend
	case install.LinkNotSymlink:
		result.Status = StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorLinkNotSymlinkFmt, linkPath)
		result.Recommendation = messages.DoctorLinkRecommend
	default:
		result.Status = StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorLinkMissingFmt, linkPath)
		result.Recommendation = messages.DoctorLinkRecommend
	}
	return result
}
