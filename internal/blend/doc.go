// Package blend provides packed-pixel blend, multiply and add operators for
// 16-bit and 32-bit pixel formats, and the blend-factor vocabulary shared by
// the blend-table shader and the material layer.
//
// The packed operators avoid integer division: channels are scaled by
// 0..256 factors and shifted.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend
