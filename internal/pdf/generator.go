package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Snapshot 是一次无头浏览器渲染的产物。
type Snapshot struct {
	PDF     []byte
	Preview []byte
}

// RenderSnapshot 使用 go-rod 在无头浏览器中渲染 HTML，
// 一次加载同时产出 PDF 和 JPEG 预览图。
func RenderSnapshot(htmlContent string) (*Snapshot, error) {
	page, cleanup, err := openPage(htmlContent)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	pdfBytes, err := exportPDF(page)
	if err != nil {
		return nil, err
	}

	previewBytes, err := captureScreenshot(page, 80)
	if err != nil {
		return nil, err
	}

	return &Snapshot{PDF: pdfBytes, Preview: previewBytes}, nil
}

// GeneratePDFFromHTML 渲染 HTML 并只返回 PDF 字节。
func GeneratePDFFromHTML(htmlContent string) ([]byte, error) {
	page, cleanup, err := openPage(htmlContent)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return exportPDF(page)
}

func openPage(htmlContent string) (_ *rod.Page, cleanup func(), err error) {
	cleanup = func() {}
	defer func() {
		if err != nil {
			cleanup()
		}
	}()

	launch := launcher.New().
		Headless(true).
		NoSandbox(true)

	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, cleanup, fmt.Errorf("launch chromium: %w", err)
	}
	cleanup = launch.Cleanup

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, cleanup, fmt.Errorf("connect browser: %w", err)
	}
	cleanup = func() {
		_ = browser.Close()
		launch.Cleanup()
	}

	page, err := browser.Timeout(30 * time.Second).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, cleanup, fmt.Errorf("create page: %w", err)
	}
	cleanup = func() {
		_ = page.Close()
		_ = browser.Close()
		launch.Cleanup()
	}

	page = page.Timeout(30 * time.Second)
	if err := page.SetDocumentContent(htmlContent); err != nil {
		return nil, cleanup, fmt.Errorf("set document content: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, cleanup, fmt.Errorf("wait load: %w", err)
	}

	// 等待 WebFont 就绪，避免回退字体度量导致排版差异
	_, _ = page.Timeout(5*time.Second).Eval(`() => {
	  if (document && document.fonts && document.fonts.ready) {
	    return Promise.race([
	      document.fonts.ready.then(() => true),
	      new Promise((resolve) => setTimeout(() => resolve(true), 3000))
	    ]);
	  }
	  return true;
	}`)

	return page, cleanup, nil
}

func exportPDF(page *rod.Page) ([]byte, error) {
	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf bytes: %w", err)
	}

	return data, nil
}

func captureScreenshot(page *rod.Page, quality int) ([]byte, error) {
	req := &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: &quality,
	}
	data, err := page.Screenshot(false, req)
	if err != nil {
		return nil, fmt.Errorf("page screenshot: %w", err)
	}
	return data, nil
}
