package renderer

import (
	"fmt"

	"github.com/glasswing/tetherbox/internal/engine/lighting"
	"github.com/glasswing/tetherbox/internal/engine/shader"
)

// program is a compiled GL program with its uniform locations cached.
// Uniforms a program does not declare resolve to -1; GL ignores writes
// to that location.
type program struct {
	id uint32

	locMVP      int32
	locModel    int32
	locModelInv int32
	locEye      int32

	locDiffuse   int32
	locSpecular  int32
	locAmbient   int32
	locShininess int32

	locLightCount int32
	lights        [lighting.MaxLights]lightLocations

	locTexture int32
}

type lightLocations struct {
	ambient  int32
	radiance int32
	position int32
}

func newProgram(vertexSrc, fragmentSrc string) (*program, error) {
	id, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &program{id: id}
	p.locMVP = shader.GetUniform(id, "uMVP")
	p.locModel = shader.GetUniform(id, "uModel")
	p.locModelInv = shader.GetUniform(id, "uModelInv")
	p.locEye = shader.GetUniform(id, "uEye")

	p.locDiffuse = shader.GetUniform(id, "uMaterial.kd")
	p.locSpecular = shader.GetUniform(id, "uMaterial.ks")
	p.locAmbient = shader.GetUniform(id, "uMaterial.ka")
	p.locShininess = shader.GetUniform(id, "uMaterial.shininess")

	p.locLightCount = shader.GetUniform(id, "uLightCount")
	for i := range p.lights {
		name := fmt.Sprintf("uLights[%d]", i)
		p.lights[i] = lightLocations{
			ambient:  shader.GetUniform(id, name+".La"),
			radiance: shader.GetUniform(id, name+".Le"),
			position: shader.GetUniform(id, name+".wLightPos"),
		}
	}

	p.locTexture = shader.GetUniform(id, "uTexture")

	return p, nil
}
