package primitives

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
uniform mat4 lightVP;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
out vec4 fragLightPos;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  fragLightPos = lightVP * vec4(fragPosition, 1.0);
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// shared lighting: ambient + shadowed directional + point light with a smooth range cutoff
	lightingGLSL = `
in vec4 fragLightPos;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec4 ambient;
uniform vec3 pointPos;
uniform vec3 pointColor;
uniform float pointRange;
uniform vec3 specularColor;
uniform float shininess;
uniform sampler2D shadowMap;
uniform float receiveShadow;
uniform float shadowTexel;
uniform float shadowBias;
float sunVisibility(vec3 N, vec3 L) {
  if (receiveShadow < 0.5) return 1.0;
  vec3 p = fragLightPos.xyz / fragLightPos.w * 0.5 + 0.5;
  if (p.z > 1.0 || p.x < 0.0 || p.x > 1.0 || p.y < 0.0 || p.y > 1.0) return 1.0;
  float bias = max(shadowBias * (1.0 - dot(N, L)), shadowBias * 0.1);
  float lit = 0.0;
  for (int x = -1; x <= 1; x++) {
    for (int y = -1; y <= 1; y++) {
      float d = texture(shadowMap, p.xy + vec2(x, y) * shadowTexel).r;
      lit += p.z - bias > d ? 0.0 : 1.0;
    }
  }
  return lit / 9.0;
}
vec3 shade(vec3 base, vec3 N, vec3 P) {
  vec3 V = normalize(viewPos - P);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float sun = sunVisibility(N, L);
  vec3 color = ambient.rgb * base + base * NdotL * lightColor * sun;
  color += specularColor * pow(max(dot(N, H), 0.0), shininess) * lightColor * step(0.0, NdotL) * sun;
  vec3 toPoint = pointPos - P;
  float d = length(toPoint);
  float falloff = clamp(1.0 - d / pointRange, 0.0, 1.0);
  vec3 Lp = toPoint / max(d, 0.0001);
  color += base * max(dot(N, Lp), 0.0) * pointColor * falloff * falloff;
  return color;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
out vec4 finalColor;
` + lightingGLSL + `
void main() {
  finalColor = vec4(shade(colDiffuse.rgb, normalize(fragNormal), fragPosition), colDiffuse.a);
}
`
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform sampler2D texture0;
out vec4 finalColor;
` + lightingGLSL + `
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  if (tint.a < 0.01) discard;
  finalColor = vec4(shade(tint.rgb, normalize(fragNormal), fragPosition), tint.a);
}
`
	// decals ignore the lights; texels below alphaCutoff are dropped
	unlitTexturedFS = `#version 330
in vec2 fragTexCoord;
uniform vec4 colDiffuse;
uniform sampler2D texture0;
uniform float alphaCutoff;
out vec4 finalColor;
void main() {
  vec4 c = texture(texture0, fragTexCoord) * colDiffuse;
  if (c.a < alphaCutoff) discard;
  finalColor = c;
}
`
	depthVS = `#version 330
in vec3 vertexPosition;
uniform mat4 mvp;
void main() {
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	depthFS = `#version 330
out vec4 finalColor;
void main() {
  finalColor = vec4(1.0);
}
`
)
