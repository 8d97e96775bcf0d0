// Command cvpdf renders a curriculum vitae data file (JSON or YAML) into a
// two-column PDF.
//
// # Usage
//
//	cvpdf generate [cv_data.json] [-o Curriculum_Vitae.pdf]
//	cvpdf validate cv_data.json
//	cvpdf version
//
// # Configuration
//
// Settings are read from .cvpdf.yaml in the working directory or $HOME,
// from CVPDF_* environment variables (a .env file is loaded first) and from
// flags, in increasing order of precedence:
//
//	output: Curriculum_Vitae.pdf
//	page_size: A4
//	margin_cm: 1.5
//	title: Curriculum Vitae
//	contact_code: qr        # none, qr or pdf417
//	font_dir: fonts
//	font:
//	  family: DejaVu
//	  regular: DejaVuSans.ttf
//	  bold: DejaVuSans-Bold.ttf
//	attachments:
//	  dir: attachments
//	log_format: text        # text or json
package main

func main() {
	Execute()
}
