package scene

import _ "embed"

//go:embed demo.toml
var demoTOML []byte

// Demo returns the built-in demo scene.
func Demo() *Scene {
	sc, err := Parse(demoTOML, "toml")
	if err != nil {
		panic("scene: bad built-in demo: " + err.Error())
	}
	return sc
}
