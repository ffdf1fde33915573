package renderer

import (
	"fmt"

	"github.com/Faultbox/sceneview/internal/engine/draw"
)

const sceneVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;
layout (location = 3) in vec3 aColor;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;
uniform mat3 uNormalMatrix;

out vec3 vEyePos;
out vec3 vNormal;
out vec2 vTexCoord;
out vec3 vColor;

void main() {
    vec4 eye = uView * uModel * vec4(aPosition, 1.0);
    vEyePos = eye.xyz;
    vNormal = uNormalMatrix * aNormal;
    vTexCoord = aTexCoord;
    vColor = aColor;
    gl_Position = uProjection * eye;
}
`

// The lighting model follows the fixed-function equation: global ambient plus,
// per light, attenuated ambient, Lambert diffuse and Blinn specular terms.
var sceneFragmentShader = fmt.Sprintf(`
#version 410 core

#define MAX_LIGHTS %d
#define NO_SPOT %d.0

struct Light {
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
    vec4 position;      // eye space
    vec3 spotDirection; // eye space
    float spotCutoff;
    float spotExponent;
};

in vec3 vEyePos;
in vec3 vNormal;
in vec2 vTexCoord;
in vec3 vColor;

uniform Light uLights[MAX_LIGHTS];
uniform int uLightCount;
uniform vec4 uGlobalAmbient;

uniform vec4 uMatAmbient;
uniform vec4 uMatDiffuse;
uniform vec4 uMatSpecular;
uniform float uShininess;

uniform vec4 uColor;
uniform bool uLit;
uniform bool uFlat;
uniform bool uVertexColors;
uniform bool uTextured;
uniform sampler2D uTexture;

out vec4 FragColor;

vec4 shade(vec3 n) {
    vec3 v = normalize(-vEyePos);
    vec4 c = uGlobalAmbient * uMatAmbient;

    for (int i = 0; i < uLightCount; i++) {
        Light l = uLights[i];
        vec3 ld;
        if (l.position.w == 0.0) {
            ld = normalize(l.position.xyz);
        } else {
            ld = normalize(l.position.xyz - vEyePos);
        }

        float spot = 1.0;
        if (l.spotCutoff < NO_SPOT) {
            float cosAngle = dot(-ld, normalize(l.spotDirection));
            if (cosAngle < cos(radians(l.spotCutoff))) {
                spot = 0.0;
            } else {
                spot = pow(max(cosAngle, 0.0), l.spotExponent);
            }
        }

        float ndl = max(dot(n, ld), 0.0);
        vec4 term = l.ambient * uMatAmbient + ndl * l.diffuse * uMatDiffuse;
        if (ndl > 0.0) {
            vec3 h = normalize(ld + v);
            term += pow(max(dot(n, h), 0.0), uShininess) * l.specular * uMatSpecular;
        }
        c += spot * term;
    }

    return vec4(c.rgb, uMatDiffuse.a);
}

void main() {
    vec4 base;
    if (uLit) {
        vec3 n = uFlat ? normalize(cross(dFdx(vEyePos), dFdy(vEyePos))) : normalize(vNormal);
        if (!gl_FrontFacing && !uFlat) {
            n = -n;
        }
        base = shade(n);
    } else if (uVertexColors) {
        base = vec4(vColor, 1.0);
    } else {
        base = uColor;
    }

    if (uTextured) {
        base *= texture(uTexture, vTexCoord);
    }
    FragColor = base;
}
`, draw.MaxLights, draw.NoSpotCutoff)
