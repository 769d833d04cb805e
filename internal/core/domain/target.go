package domain

import (
	"path/filepath"
	"strings"
)

// TargetKind is the discriminant of an output target as written in configuration.
type TargetKind string

const (
	// KindWebComponent emits one self-contained bundle per component.
	KindWebComponent TargetKind = "webcomponent"
	// KindWWW is a web app build; it receives bundled output for small apps.
	KindWWW TargetKind = "www"
	// KindDist is a distributable library build; it receives bundled output for small apps.
	KindDist TargetKind = "dist"
	// KindDocs generates documentation and never receives script bundles from this stage.
	KindDocs TargetKind = "docs"
	// KindStats writes build statistics and never receives script bundles from this stage.
	KindStats TargetKind = "stats"
)

// ScriptExt is the extension of every emitted script bundle.
const ScriptExt = ".js"

// modeSeparator joins the namespace and the mode name in bundled file names.
const modeSeparator = "."

// OutputTarget is a configured destination for build output.
// The set of implementations is closed: WebComponentTarget, BuildTarget and AuxTarget.
type OutputTarget interface {
	// Kind returns the configured target type.
	Kind() TargetKind
	isOutputTarget()
}

// WebComponentTarget receives one self-contained bundle per component.
type WebComponentTarget struct {
	Dir string
}

// Kind implements OutputTarget.
func (WebComponentTarget) Kind() TargetKind { return KindWebComponent }

func (WebComponentTarget) isOutputTarget() {}

// FilePath returns the destination of the self-contained bundle for tagName.
func (t WebComponentTarget) FilePath(tagName string) string {
	return filepath.Join(t.Dir, SelfContainedFileName(tagName))
}

// BuildTarget is a www or dist build that is eligible for bundled output.
type BuildTarget struct {
	Type      TargetKind
	BuildDir  string
	Namespace string
}

// Kind implements OutputTarget.
func (t BuildTarget) Kind() TargetKind { return t.Type }

func (BuildTarget) isOutputTarget() {}

// FilePath returns the destination of the bundle variant for mode.
func (t BuildTarget) FilePath(mode string) string {
	return filepath.Join(t.BuildDir, BundleFileName(t.Namespace, mode))
}

// AuxTarget is any other configured target. This stage never writes to it.
type AuxTarget struct {
	Type TargetKind
	Dir  string
}

// Kind implements OutputTarget.
func (t AuxTarget) Kind() TargetKind { return t.Type }

func (AuxTarget) isOutputTarget() {}

// SelfContainedFileName is the file name of a component's self-contained bundle.
func SelfContainedFileName(tagName string) string {
	return tagName + ScriptExt
}

// BundleFileName is the file name of a bundled variant.
// The default mode has no suffix; any other mode is appended lowercased after a separator.
func BundleFileName(namespace, mode string) string {
	if mode == DefaultStyleMode {
		return namespace + ScriptExt
	}
	return namespace + modeSeparator + strings.ToLower(mode) + ScriptExt
}
