package mock

import "github.com/recipedoc/recipedoc"

var _ recipedoc.SiteDetector = (*SiteDetector)(nil)

// SiteDetector is a mock implementation of recipedoc.SiteDetector.
type SiteDetector struct {
	DetectFn func(html string) recipedoc.Site
}

func (d *SiteDetector) Detect(html string) recipedoc.Site {
	return d.DetectFn(html)
}
