package render

import "folioswift/internal/portfolio"

// animationHiddenCSS 是入场动画的初始隐藏态样式表。
// 静态查表，不在渲染时拼 CSS 字符串；.visible 统一把元素恢复原位。
var animationHiddenCSS = map[portfolio.Animation]string{
	portfolio.AnimationNone:    "",
	portfolio.AnimationFade:    ".reveal { opacity: 0; }",
	portfolio.AnimationSlideUp: ".reveal { opacity: 0; transform: translateY(80px); }",
	portfolio.AnimationScaleIn: ".reveal { opacity: 0; transform: scale(0.9); }",
	portfolio.AnimationBlurIn:  ".reveal { opacity: 0; filter: blur(12px); }",
	portfolio.AnimationBounce:  ".reveal { opacity: 0; transform: translateY(-40px); }",
	portfolio.AnimationSkewIn:  ".reveal { opacity: 0; transform: skewY(4deg) translateY(40px); }",
	portfolio.AnimationFlip:    ".reveal { opacity: 0; transform: perspective(800px) rotateX(45deg); }",
}

// HiddenStateCSS 返回动画的初始隐藏态 CSS，未知动画当作 none 处理。
func HiddenStateCSS(a portfolio.Animation) string {
	css, ok := animationHiddenCSS[a]
	if !ok {
		return ""
	}
	return css
}
