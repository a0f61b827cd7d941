package gpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

//go:embed shaders/sdf_text.wgsl
var sdfTextShaderWGSL string

var (
	shaderOnce  sync.Once
	shaderCode  []uint32
	shaderError error
)

// TextShaderWGSL returns the WGSL source of the SDF text shader.
func TextShaderWGSL() string {
	return sdfTextShaderWGSL
}

// CompileTextShader compiles the SDF text shader to SPIR-V.
// The result is cached; repeated calls return the same slice.
func CompileTextShader() ([]uint32, error) {
	shaderOnce.Do(func() {
		shaderCode, shaderError = compileWGSL(sdfTextShaderWGSL)
	})
	if shaderError != nil {
		return nil, shaderError
	}
	return shaderCode, nil
}

// compileWGSL compiles WGSL source to SPIR-V words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("gpu: SPIR-V output is %d bytes, not word aligned", len(spirvBytes))
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
