// Package devices holds the device and firmware support tables for the
// activation workflow.
package devices

import (
	"sort"

	"github.com/hashicorp/go-version"
)

// Device object
type Device struct {
	ProductType        string `json:"product_type"`
	ProductDescription string `json:"product_description"`
}

type Devices []Device

func (d Devices) Len() int      { return len(d) }
func (d Devices) Swap(i, j int) { d[i], d[j] = d[j], d[i] }

type ByProductType struct{ Devices }

func (s ByProductType) Less(i, j int) bool {
	return s.Devices[i].ProductType < s.Devices[j].ProductType
}

var supported = Devices{
	{ProductType: "iPhone4,1", ProductDescription: "iPhone 4S"},
	{ProductType: "iPad2,1", ProductDescription: "iPad 2 (Wi-Fi)"},
	{ProductType: "iPad2,2", ProductDescription: "iPad 2 (GSM)"},
	{ProductType: "iPad2,3", ProductDescription: "iPad 2 (CDMA)"},
	{ProductType: "iPad2,4", ProductDescription: "iPad 2 (Wi-Fi, 2012)"},
	{ProductType: "iPad2,5", ProductDescription: "iPad mini (Wi-Fi)"},
	{ProductType: "iPad2,6", ProductDescription: "iPad mini (GSM)"},
	{ProductType: "iPad2,7", ProductDescription: "iPad mini (CDMA)"},
	{ProductType: "iPad3,1", ProductDescription: "iPad 3rd gen (Wi-Fi)"},
	{ProductType: "iPad3,2", ProductDescription: "iPad 3rd gen (CDMA)"},
	{ProductType: "iPad3,3", ProductDescription: "iPad 3rd gen (GSM)"},
	{ProductType: "iPod5,1", ProductDescription: "iPod touch 5th gen"},
}

var supportedVersions = []string{"8.4.1", "9.3.5", "9.3.6"}

var buildVersions = map[string]string{
	"12H321": "8.4.1",
	"13G36":  "9.3.5",
	"13G37":  "9.3.6",
}

// Supported returns the devices the activation workflow supports.
func Supported() Devices {
	out := make(Devices, len(supported))
	copy(out, supported)
	return out
}

// SupportedProduct reports whether the given product type is supported.
func SupportedProduct(productType string) bool {
	for _, d := range supported {
		if d.ProductType == productType {
			return true
		}
	}
	return false
}

// SupportedVersion reports whether the given firmware version is
// supported. Comparison is version-aware, so "9.3.5.0" matches "9.3.5".
func SupportedVersion(v string) bool {
	got, err := version.NewVersion(v)
	if err != nil {
		return false
	}
	for _, s := range supportedVersions {
		want, err := version.NewVersion(s)
		if err != nil {
			continue
		}
		if got.Equal(want) {
			return true
		}
	}
	return false
}

// VersionForBuild returns the firmware version for a build number, or ""
// when the build is unknown.
func VersionForBuild(build string) string {
	return buildVersions[build]
}

// SupportedBuild reports whether a model/build pair falls inside the
// supported device matrix.
func SupportedBuild(productType, build string) bool {
	return SupportedProduct(productType) && SupportedVersion(VersionForBuild(build))
}

// Versions returns the supported firmware versions sorted ascending.
func Versions() []string {
	vs := make(version.Collection, 0, len(supportedVersions))
	for _, s := range supportedVersions {
		v, err := version.NewVersion(s)
		if err != nil {
			continue
		}
		vs = append(vs, v)
	}
	sort.Sort(vs)
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Original()
	}
	return out
}
