package main

// Canned demo grammars, named after the figures/examples of the analysis
// this tool implements. S1, S2 and S4 reproduce the literal example
// grammars used to illustrate closure, ordering and cycle detection; S3,
// S5 and S6 are original grammars, since those examples were described
// rather than given verbatim. S3 splits A into four groups (one inherited
// group, then three synthesized groups along the r1 -> r2 -> s chain), so
// the kinds alternate only once. S5 is a pair of mutually recursive
// productions whose equations link each left-hand side to the terminal at
// position 1; it is scheduled without any group split, so it does not
// exercise cycle breaking. S6 is a two-production schedule.
var demos = map[string]string{
	"s1": `A->BC : y[0]=z[2]; x[1]=x[0]; x[2]=y[1]; y[2]=x[2]
B->a
B->C : y[0]=z[1]; x[1]=x[0]
C->b : z[0]=y[0]
`,
	"s2": `B->C : x[0]=x[1]; y[0]=y[1]
A->B
B->D : x[0]=y[1]; y[0]=x[1]
`,
	"s3": `A->BCD : v1[0]=v1[1]; v2[0]=v2[2]; v3[0]=v3[3]; w1[1]=w1[0]; w2[2]=w2[0]; w3[3]=w3[0]; u1[1]=u1[0]; u2[2]=u2[0]; u3[3]=u3[0]; r1[0]=u1[1] u2[2]; r2[0]=u3[3] r1[0]; s[0]=r2[0]
B->a
C->b
D->c
`,
	"s4": `A->B : x[0]=0; x[1]=x[0]; y[0]=y[1]; y[1]=0
A->a
A->c
`,
	"s5": `A->xB : p[0]=q[1]; q[0]=p[1]
B->yA : p[0]=q[1]; q[0]=p[1]
B->z
`,
	"s6": `L->SL : x[0]=x[2]; y[1]=y[0]; z[2]=z[0] y[1]
C->ML : a[0]=a[2]; b[1]=b[0]; c[2]=c[0] b[1]
`,
}
