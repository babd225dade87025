// Package server は、静的ファイルを配信するHTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、静的ファイルの配信、
// クロスオリジン分離ヘッダーの付与を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 配信ディレクトリ配下の静的ファイルの配信
//   - すべてのレスポンスへのCOEP/COOPヘッダーの付与
//   - シグナル受信時のグレースフルシャットダウン
//
// 仕様:
//   - ルーティングとミドルウェアはgin-gonic/ginを使用
//   - ファイル解決は標準ライブラリのhttp.FileServerに委譲
//     （MIME判定・Rangeリクエスト・ディレクトリ一覧・パスの正規化を含む）
//   - SIGINT/SIGTERMで正常終了し、リッスンソケットを解放する
package server
