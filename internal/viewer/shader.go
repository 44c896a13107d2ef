package viewer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderError carries the driver info log of a failed compile or link.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("link error: %s", strings.TrimSpace(e.Log))
	}
	return fmt.Sprintf("%s shader compile error: %s", e.Stage, strings.TrimSpace(e.Log))
}

// The presentation program draws the rendered frame as a fullscreen quad.
// Canvas row 0 is the top of the image, GL texture row 0 the bottom.
const vertexShader = `#version 410
in vec2 position;
out vec2 uv;
void main() {
    uv = vec2((position.x + 1.0) / 2.0, (1.0 - position.y) / 2.0);
    gl_Position = vec4(position, 0.0, 1.0);
}` + "\x00"

const fragmentShader = `#version 410
in vec2 uv;
out vec4 color;
uniform sampler2D frame;
void main() {
    color = vec4(texture(frame, uv).rgb, 1.0);
}` + "\x00"

func compileShader(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	cstr, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, cstr, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		stage := "vertex"
		if kind == gl.FRAGMENT_SHADER {
			stage = "fragment"
		}
		return 0, &ShaderError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func newProgram(vs, fs string) (uint32, error) {
	vShader, err := compileShader(vs, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vShader)
	fShader, err := compileShader(fs, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fShader)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vShader)
	gl.AttachShader(prog, fShader)
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, &ShaderError{Stage: "link", Log: strings.TrimRight(log, "\x00")}
	}
	return prog, nil
}
