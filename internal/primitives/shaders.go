package primitives

// Shaders use the raylib default vertex attributes (vertexPosition, vertexTexCoord, vertexNormal).
// Fog is linear in eye distance with a smoothstep falloff between fogNear and fogFar.
const (
	vertexShader = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// basicFS: flat color with alpha, no lighting.
	basicFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;
out vec4 finalColor;
void main() {
  float fog = smoothstep(fogNear, fogFar, length(viewPos - fragPosition));
  finalColor = vec4(mix(colDiffuse.rgb, fogColor, fog), colDiffuse.a);
}
`
	// litFS: Lambert diffuse under a hemisphere light.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;
uniform vec3 skyColor;
uniform vec3 groundColor;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  float w = 0.5 * N.y + 0.5;
  vec3 irradiance = mix(groundColor, skyColor, w) * lightIntensity;
  vec3 color = colDiffuse.rgb * irradiance / 3.14159265359;
  float fog = smoothstep(fogNear, fogFar, length(viewPos - fragPosition));
  finalColor = vec4(mix(color, fogColor, fog), colDiffuse.a);
}
`
)
