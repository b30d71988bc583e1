package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldText(t *testing.T) {
	assert.Equal(t, "area del puesto", foldText("Área del Puesto"))
	assert.Equal(t, "genero", foldText("GÉNERO"))
	assert.Equal(t, "ubicacion", foldText("Ubicación"))
	assert.Equal(t, "plain ascii", foldText("Plain ASCII"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", cleanText("  a\n\tb  c  "))
	assert.Equal(t, "", cleanText(" \n "))
}

func TestLabelValue(t *testing.T) {
	re := regexp.MustCompile(`experiencia`)

	t.Run("next sibling element", func(t *testing.T) {
		doc := docFrom(t, `<div><span>Experiencia:</span><span>2 años</span></div>`)
		assert.Equal(t, "2 años", labelValue(doc, re))
	})

	t.Run("next element in document order when no sibling", func(t *testing.T) {
		doc := docFrom(t, `<div><p><b>Experiencia:</b></p><p>3 años</p></div>`)
		// the <b> has no element sibling; document order continues to the
		// second <p>
		assert.Equal(t, "3 años", labelValue(doc, re))
	})

	t.Run("no label means no value", func(t *testing.T) {
		assert.Equal(t, "", labelValue(docFrom(t, `<p>nada</p>`), re))
	})
}

func TestFindByClass(t *testing.T) {
	doc := docFrom(t, `
<div class="header">x</div>
<div class="empresa-logo">y</div>
<div class="logo-grande">z</div>`)

	sel := findByClass(doc, regexp.MustCompile(`logo|company`), "")
	require.NotNil(t, sel)
	// first match in document order
	assert.Equal(t, "y", sel.Text())

	assert.Nil(t, findByClass(doc, regexp.MustCompile(`nomatch`), ""))
}

func TestFindText_DocumentOrder(t *testing.T) {
	doc := docFrom(t, `<p>uno salario</p><p>dos salario</p>`)
	n := findText(doc, regexp.MustCompile(`salario`))
	require.NotNil(t, n)
	assert.Equal(t, "uno salario", n.Data)
}

func TestNextElement_EntersChildren(t *testing.T) {
	doc := docFrom(t, `<div id="a"><span id="b">x</span></div>`)
	a := doc.Find("#a")
	require.Len(t, a.Nodes, 1)

	next := nextElement(a.Nodes[0])
	require.NotNil(t, next)
	b := doc.Find("#b")
	require.Len(t, b.Nodes, 1)
	assert.Equal(t, b.Nodes[0], next)
}

func TestNodeLines(t *testing.T) {
	doc := docFrom(t, `<div id="d"><p>línea uno</p> <p>línea   dos</p></div>`)
	d := doc.Find("#d")
	require.Len(t, d.Nodes, 1)
	assert.Equal(t, "línea uno\nlínea dos", nodeLines(d.Nodes[0]))
}
