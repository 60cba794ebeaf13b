package server

import (
	"embed"
	"html/template"
	"strings"

	"github.com/acearchive/files/types"
)

//go:embed assets
var assetsFS embed.FS

// ViewerKind is the embed element the viewer page uses for a media type
type ViewerKind string

const (
	ViewerNone  ViewerKind = ""
	ViewerImage ViewerKind = "image"
	ViewerAudio ViewerKind = "audio"
	ViewerVideo ViewerKind = "video"
)

// ViewerKindFor returns how the viewer page embeds the media type, or
// ViewerNone when the file is always served raw
func ViewerKindFor(mediaType string) ViewerKind {
	mainType, _, _ := strings.Cut(strings.ToLower(mediaType), "/")
	switch mainType {
	case "image":
		return ViewerImage
	case "audio":
		return ViewerAudio
	case "video":
		return ViewerVideo
	default:
		return ViewerNone
	}
}

// viewerPage is the data rendered into the viewer template
type viewerPage struct {
	Title           string
	IconURL         string
	ArtifactPageURL string
	RawFileURL      string
	MediaType       string
	Kind            ViewerKind
}

func newViewerPage(archiveDomain string, metadata types.ArtifactFileMetadata) viewerPage {
	return viewerPage{
		Title:           types.PrettifyFilename(metadata.CanonicalFilename),
		IconURL:         "https://" + strings.TrimSuffix(archiveDomain, "/") + "/favicon.ico",
		ArtifactPageURL: types.ArtifactPageURL(archiveDomain, metadata),
		RawFileURL:      types.RawFilePath(metadata),
		MediaType:       metadata.MediaType,
		Kind:            ViewerKindFor(metadata.MediaType),
	}
}

// viewerTemplate parses the embedded viewer page template
func viewerTemplate() *template.Template {
	return template.Must(template.ParseFS(assetsFS, "assets/viewer.html"))
}

// mustAsset returns an embedded static asset
func mustAsset(name string) []byte {
	data, err := assetsFS.ReadFile("assets/" + name)
	if err != nil {
		panic(err)
	}
	return data
}
