//go:build !mobile

// 普通构建下 mobile 包只有这个文件。
// 展品的移动端绑定在 mobile.go 中（-tags mobile），使用内置默认配置。
package mobile

// Dummy 空导出函数，桌面构建下包不为空
func Dummy() {}
