package xslt

// ExportNamespace is the namespace of profile export documents.
var ExportNamespace = Namespace{Prefix: "forum", URI: "urn:forumview:export"}

const exportCSS = `body { font-family: sans-serif; margin: 2em; }
article.post, article.pm { border-bottom: 1px solid #ccc; padding: 0.5em 0; }
dl.profile dt { font-weight: bold; }
p.meta { color: #666; font-size: small; }`

// DefaultExport returns the stylesheet that renders member profile exports
// (profile fields, posts and personal messages) as an HTML page.
func DefaultExport(scriptURL string) Stylesheet {
	return Stylesheet{
		Version:         "1.0",
		Namespaces:      []Namespace{ExportNamespace},
		ExcludePrefixes: []string{ExportNamespace.Prefix},
		Output: Output{
			Method:        "html",
			Encoding:      "UTF-8",
			Indent:        true,
			DoctypeSystem: "about:legacy-compat",
		},
		Params: []Param{
			{Name: "scripturl", Value: scriptURL},
		},
		Variables: []Variable{
			{Name: "title", Select: "/*/@title"},
		},
		Templates: []Template{
			{
				Match: "/*",
				Body: `<html>
			<head>
				<title><xsl:value-of select="$title"/></title>
				<style>` + exportCSS + `</style>
			</head>
			<body>
				<h1><xsl:value-of select="$title"/></h1>
				<xsl:apply-templates select="forum:member"/>
				<xsl:apply-templates select="forum:posts"/>
				<xsl:apply-templates select="forum:personal_messages"/>
			</body>
		</html>`,
			},
			{
				Match: "forum:member",
				Body: `<section id="profile">
			<xsl:call-template name="heading"><xsl:with-param name="text" select="forum:name"/></xsl:call-template>
			<dl class="profile">
				<xsl:for-each select="*[not(self::forum:name)]">
					<dt><xsl:value-of select="local-name()"/></dt>
					<dd><xsl:value-of select="."/></dd>
				</xsl:for-each>
			</dl>
		</section>`,
			},
			{
				Match: "forum:posts",
				Body: `<section id="posts">
			<xsl:call-template name="heading"><xsl:with-param name="text" select="@label"/></xsl:call-template>
			<xsl:apply-templates select="forum:post"/>
		</section>`,
			},
			{
				Match: "forum:post",
				Body: `<article class="post" id="msg{@id}">
			<h3><a href="{$scripturl}?msg={@id}"><xsl:value-of select="forum:subject"/></a></h3>
			<p class="meta"><xsl:value-of select="forum:board"/> - <xsl:value-of select="forum:time"/></p>
			<div class="body"><xsl:value-of select="forum:body_html" disable-output-escaping="yes"/></div>
		</article>`,
			},
			{
				Match: "forum:personal_messages",
				Body: `<section id="personal_messages">
			<xsl:call-template name="heading"><xsl:with-param name="text" select="@label"/></xsl:call-template>
			<xsl:apply-templates select="forum:personal_message"/>
		</section>`,
			},
			{
				Match: "forum:personal_message",
				Body: `<article class="pm" id="pm{@id}">
			<h3><xsl:value-of select="forum:subject"/></h3>
			<p class="meta"><xsl:value-of select="forum:sender"/> - <xsl:value-of select="forum:time"/></p>
			<div class="body"><xsl:value-of select="forum:body_html" disable-output-escaping="yes"/></div>
		</article>`,
			},
			{
				Name:   "heading",
				Params: []Param{{Name: "text"}},
				Body:   `<h2><xsl:value-of select="$text"/></h2>`,
			},
		},
	}
}
